package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is used to decode the top-level blocks of every file.
type fileRoot struct {
	Components []*componentBlock `hcl:"component,block"`
	Remain     hcl.Body          `hcl:",remain"`
}

// componentBlock is the HCL shape of one component:
//
//	component "Name" {
//	  class    = "ColorChanger"
//	  selector = ".color-changer"
//	  requires = ["AlertButton"]
//	  options {
//	    color = "red"
//	  }
//	}
type componentBlock struct {
	Name           string        `hcl:"name,label"`
	Class          string        `hcl:"class,optional"`
	Selector       string        `hcl:"selector,optional"`
	Requires       []string      `hcl:"requires,optional"`
	Applies        string        `hcl:"applies,optional"`
	Identification string        `hcl:"identification,optional"`
	Options        *optionsBlock `hcl:"options,block"`
}

type optionsBlock struct {
	Body hcl.Body `hcl:",remain"`
}
