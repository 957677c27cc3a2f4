// Package config defines the format-agnostic palette configuration model and
// the Loader interface implemented by the format adapters.
//
// A Model describes which colours exist and how every role of a colour is
// named. It is the single input the app turns into a palette.Palette; the
// HCL and YAML adapters live in separate packages.
package config
