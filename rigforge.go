package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"

	"github.com/mogaika/rigforge/config"
	"github.com/mogaika/rigforge/rigscript"
	"github.com/mogaika/rigforge/utils"
	"github.com/mogaika/rigforge/utils/gltfutils"
	"github.com/mogaika/rigforge/web"

	_ "github.com/mogaika/rigforge/preset"
	_ "github.com/mogaika/rigforge/rig/chain"
)

func main() {
	var addr, script, gltfOut, encoding string
	var strictDXF, dump bool
	flag.StringVar(&addr, "i", ":8000", "Address of server")
	flag.StringVar(&script, "script", "", "Build a rig script instead of starting the server")
	flag.StringVar(&gltfOut, "gltf", "", "Write binary gltf of the built armature to this file")
	flag.StringVar(&encoding, "encoding", "", "Legacy string encoding override (see /json/encodings)")
	flag.BoolVar(&strictDXF, "strictdxf", false, "Reject unknown CAD codepages instead of ignoring them")
	flag.BoolVar(&dump, "dump", false, "Dump the built armature to log")
	flag.Parse()

	if encoding != "" {
		if err := config.SetEncoding(encoding); err != nil {
			log.Fatal(err)
		}
	}
	if strictDXF {
		config.SetDXFMode(config.DXF_MODE_STRICT)
	}

	if script == "" {
		if err := web.StartServer(addr); err != nil {
			log.Fatal(err)
		}
		return
	}

	text, err := ioutil.ReadFile(script)
	if err != nil {
		log.Fatal(err)
	}

	arm, report, err := rigscript.Run(text)
	if err != nil {
		log.Fatal(err)
	}

	for _, m := range report.Messages {
		if m.IsError {
			log.Printf("[rig] ERROR %q: %v", m.Rig, m.Text)
		} else {
			log.Printf("[rig] %q: %v", m.Rig, m.Text)
		}
	}

	if dump {
		utils.LogDump(arm.Bones())
		log.Printf("\n%s", arm.StringTree())
	}

	if gltfOut != "" {
		gltfCacher := gltfutils.NewCacher()
		if _, err := arm.ExportGLTF(gltfCacher); err != nil {
			log.Fatal(err)
		}
		f, err := os.Create(gltfOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := gltfutils.ExportBinary(f, gltfCacher.Doc); err != nil {
			log.Fatal(err)
		}
		log.Printf("[gltf] Exported %q", gltfOut)
	}

	if report.HasErrors() {
		os.Exit(1)
	}
}
