// Package config describes rewrite jobs: a glob pattern plus an ordered rule list.
//
//	            +-------------+
//	            |   Config    |
//	            |  (Job def)  |
//	            +------+------+
//	                   |
//	   +---------------+---------------+
//	   |               |               |
//	+--+---+       +---+---+       +---+---+
//	| YAML |       | JSON  |       |  HCL  |
//	+------+       +-------+       +-------+
//
// 🎯 Purpose:
// - Ship the two built-in presets (repos, services) with their fixed patterns
// - Load custom rule sets from YAML, JSON or HCL files
// - Validate patterns, type names and rules before any file is touched
//
// 🔄 Flow:
// 1. Load picks a Parser by file extension
// 2. the Parser decodes into Config, unknown fields are rejected
// 3. Validate fills defaults from the preset and checks every rule
// 4. BuildRules returns preset rules followed by the file's own rules
//
// 🔍 Example (YAML):
//
//	preset: services
//	pattern: "app/**/services/**/*.java"
//	rules:
//	  - kind: regex
//	    from: 'ZoneId\.systemDefault\(\)'
//	    to: "ZoneOffset.UTC"
//	    description: pin the zone
//
// 🔍 Example (HCL):
//
//	pattern = "${env.SRC}/**/*.java"
//	from    = defaults.from
//	to      = "java.time.ZonedDateTime"
//
//	rule {
//	  kind = "identifier"
//	  from = "LocalDateTime"
//	  to   = "ZonedDateTime"
//	}
package config
