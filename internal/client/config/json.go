package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkrasnenko/sharedtab/internal/flagx"
	"github.com/dkrasnenko/sharedtab/internal/timex"
)

// JsonConfig is the DTO used for reading JSON configuration files. It uses
// timex.Duration for interval fields so both string values such as "10s"
// and integer nanoseconds are accepted.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	DBFileName         string         `json:"db_file_name"`
	PollInterval       timex.Duration `json:"poll_interval"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; when
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.DBFileName = c.DBFileName
	config.PollInterval = time.Duration(c.PollInterval.Duration)
}
