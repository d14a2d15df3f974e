// Package hcl provides the HCL implementation of config.Loader. It is
// responsible for parsing `component` blocks and converting their option
// bodies from cty values to plain Go values.
package hcl
