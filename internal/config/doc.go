// Package config provides configuration parsing for the markup tools.
//
// The configuration is stored in markup.json. It is optional: every field has
// a default, and command-line flags override whatever the file sets.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "host": "localhost",
//	    "port": 3030,
//	    "metricsPath": "/metrics"
//	  },
//	  "escape": {
//	    "bufferSize": 4096,
//	    "attr": false
//	  },
//	  "metrics": {
//	    "namespace": "markup"
//	  },
//	  "tracing": {
//	    "tracerName": "markup"
//	  },
//	  "output": {
//	    "region": "eu-north-1",
//	    "s3Bucket": "rendered-pages",
//	    "s3Prefix": "escaped/"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
