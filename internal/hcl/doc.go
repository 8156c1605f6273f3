// Package hcl provides the concrete HCL implementation of the plan loading
// interface defined in the `app` package. It is responsible for file
// parsing, defaults resolution, and HCL-to-task translation.
package hcl
