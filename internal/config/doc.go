// Package config manages user-level settings stored at
// ~/.create-kevin-app/config.yaml. Every key has a default, and CKA_*
// environment variables override the file.
package config
