package main

import (
	"os"

	"github.com/MKhiriev/go-smooai-config/internal/app"
	"github.com/MKhiriev/go-smooai-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(app.Execute(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
}
