// Package config loads cablenet settings from YAML or TOML files.
//
// A Config groups the logging, pipeline, metrics and cable-catalog
// sections. Load picks the decoder from the file extension (.yaml, .yml or
// .toml), starts from Default, rejects unknown keys and validates the
// result with struct tags:
//
//	cfg, err := config.Load("cablenet.yaml")
//	model, err := cfg.Cables.Model()
//	inst, err := instance.New(g, root, append(cfg.Cables.InstanceOptions(), more...)...)
package config
