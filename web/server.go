package web

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func StartServer(addr string) error {
	r := mux.NewRouter()
	r.HandleFunc("/json/presets", HandlerAjaxPresets)
	r.HandleFunc("/json/preset/{name}", HandlerAjaxPreset)
	r.HandleFunc("/json/rigtypes", HandlerAjaxRigTypes)
	r.HandleFunc("/json/encodings", HandlerAjaxEncodings)
	r.HandleFunc("/dump/preset/{name}/{format}", HandlerDumpPreset)
	r.HandleFunc("/action/generate", HandlerActionGenerate)
	r.HandleFunc("/action/export/gltf", HandlerActionExportGLTF)
	r.HandleFunc("/ws/status", HandlerWebsocketStatus)

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
