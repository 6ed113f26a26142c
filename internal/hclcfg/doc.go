// Package hclcfg provides the concrete HCL implementation of the
// configuration Loader interface defined in the `config` package. It parses
// `context` blocks of typed seed entries and the `server` block, and
// translates them into the format-agnostic model.
package hclcfg
