// Package config loads the optional slnkit.hcl tool configuration file. The
// file tunes output formatting and logging, and can declare friendly names
// for well-known project-type GUIDs used by the list command.
//
// Attribute values are HCL expressions evaluated against an `env` object
// built from the process environment, so a config file can defer choices
// like the log level to the invoking shell:
//
//	indent     = "\t"
//	log_level  = env.SLNKIT_LOG_LEVEL
//
//	project_type "csharp" {
//	  guid = "{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}"
//	}
package config
