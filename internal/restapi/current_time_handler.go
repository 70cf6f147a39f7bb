package restapi

import (
	"net/http"
	"time"

	"mortalidad.saluddatos.org/internal/models"
)

func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	response := models.NewOKResponse(models.NewCurrentTimeData(time.Now()))
	api.sendResponse(w, r, response)
}
