// Package config loads toastkit configuration.
//
// Configuration is read from toastkit.json, toastkit.yaml (or .yml) or
// toastkit.toml. The format is chosen by file extension:
//
//	{
//	  "server": {"host": "localhost", "port": 3100},
//	  "toast": {"duration": 4000, "style": {"font-family": "system-ui"}},
//	  "metrics": {"enabled": true},
//	  "log": {"level": "info", "format": "text"}
//	}
//
// Watch re-reads the file when it changes so toast defaults can be tuned
// without restarting the server.
package config
