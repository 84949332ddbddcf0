package config

import "os"

// HTTPAddr is the listen address of the API server, ":8080" unless HTTP_ADDR
// overrides it.
func HTTPAddr() string {
	if addr, ok := os.LookupEnv("HTTP_ADDR"); ok {
		return addr
	}
	return ":8080"
}
