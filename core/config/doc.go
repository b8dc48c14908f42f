// Package config provides configuration management for the artifact store.
//
// It loads a .env file into the process environment with godotenv and then
// uses Viper to map environment variables onto the Config struct, with
// defaults taken from the `default` struct tags.
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, API key)
//   - Storage: endpoint, region and the names of the credential variables
//   - Database: optional MySQL transfer ledger
//   - Log: logging level and format
//   - Artifacts: folder probe policy
//   - Pipeline: local artifact directories and remote keys for the pipeline stages
//
// The credentials themselves are never part of Config; storage reads them from
// the variables named by Storage.AccessKeyEnv and Storage.SecretKeyEnv.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Endpoint)
package config
