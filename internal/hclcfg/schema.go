package hclcfg

import "github.com/hashicorp/hcl/v2"

// entrySchema is one typed seed entry inside a `context` block.
type entrySchema struct {
	Name  string         `hcl:"name,label"`
	Value hcl.Expression `hcl:"value"`
}

// contextSchema is a `context` block: the seed entries for the application
// context store.
type contextSchema struct {
	Entries []*entrySchema `hcl:"entry,block"`
}

// serverSchema is the `server` block describing the HTTP surface.
type serverSchema struct {
	Addr string `hcl:"addr,optional"`
}

// rootSchema is the top-level structure of a configuration file.
type rootSchema struct {
	Context *contextSchema `hcl:"context,block"`
	Server  *serverSchema  `hcl:"server,block"`
}
