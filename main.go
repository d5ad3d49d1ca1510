package main

import (
	"embed"
	"flag"
	"io/fs"
	"os"

	"github.com/chazu/vertexlight/pkg/kernel/sdfx"
	"github.com/plan-systems/klog"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend
var assets embed.FS

func main() {
	var (
		meshPath  = flag.String("mesh", "", "glTF file to open (.gltf or .glb)")
		primitive = flag.String("primitive", "sphere", "primitive to open when -mesh is empty: box, sphere or cylinder")
		size      = flag.Float64("size", 10, "primitive size")
		cells     = flag.Int("cells", sdfx.DefaultCells, "marching cubes cells along the longest axis")
		width     = flag.Int("width", 1024, "window width")
		height    = flag.Int("height", 768, "window height")
		verbosity = flag.String("v", "1", "log verbosity")
	)

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()
	fset.Set("v", *verbosity)
	defer klog.Flush()

	app := NewApp(sdfx.New(sdfx.WithCells(*cells)))

	var res LoadResult
	if *meshPath != "" {
		res = app.LoadGLTF(*meshPath)
	} else {
		res = app.LoadPrimitive(*primitive, *size)
	}
	if res.Error != "" {
		klog.Errorf("initial mesh: %s", res.Error)
	}

	frontend, err := fs.Sub(assets, "frontend")
	if err == nil {
		err = wails.Run(&options.App{
			Title:  "vertexlight",
			Width:  *width,
			Height: *height,
			AssetServer: &assetserver.Options{
				Assets: frontend,
			},
			OnStartup: app.startup,
			Bind: []interface{}{
				app,
			},
		})
	}
	if err != nil {
		klog.Errorf("vertexlight: %v", err)
		klog.Flush()
		os.Exit(1)
	}
}
