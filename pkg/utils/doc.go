// Package utils provides small packages shared across kubeassist.
//
//   - envvar: ${VAR} expansion in configuration values
//   - logging: logrus setup and redirection
//   - notify: formatted status messages and progress groups
package utils
