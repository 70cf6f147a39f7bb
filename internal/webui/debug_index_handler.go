package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	dataset := webUI.Manager.Dataset()

	switch dataType {
	case "departments":
		data = dataset.Departments
		title = "DIVIPOLA - Departamentos"
	case "municipalities":
		data = dataset.Municipalities
		title = "DIVIPOLA - Municipios"
	case "causes":
		data = dataset.Causes
		title = "CIE-10 - Causas de muerte"
	case "records":
		sample := dataset.Deaths
		if len(sample) > 50 {
			sample = sample[:50]
		}
		data = sample
		title = "EEVV 2019 - Registros (muestra)"
	case "status":
		data = map[string]interface{}{
			"records":     len(dataset.Deaths),
			"skippedRows": dataset.SkippedRows,
			"lastUpdated": webUI.Manager.LastUpdated(),
		}
		title = "Estado del conjunto de datos"
	default:
		data = map[string]string{
			"error": "Please use one of the following: departments, municipalities, causes, records, status.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
