// Package config loads, validates and repairs the jukebox configuration.
//
// Bootstrap runs the whole sequence once at startup:
//
//  1. Resolve the config file location
//  2. Merge the file with built-in defaults and JUKEBOX_* environment variables
//  3. Validate the required fields (token and owner)
//  4. Ask the operator for any field that failed, once
//  5. Write recovered values back to the config file
//
// # Usage
//
//	out := config.Bootstrap(config.Options{
//	    Prompter: prompt.New(os.Stdin, os.Stdout, prompt.Options{}),
//	})
//	if !out.Valid {
//	    os.Exit(1)
//	}
//
//	// Store in context for subcommands
//	ctx = config.WithContext(ctx, out.Config)
//
// # Config Location
//
// The file is looked up in this order:
//
//  1. The --config flag or JUKEBOX_CONFIG_FILE
//  2. JUKEBOX_CONFIG
//  3. config.yaml in the working directory
//
// A missing file is not an error: defaults apply and the operator is asked
// for the token and owner.
//
// # Validation
//
// Only two fields are checked:
//   - token must be set and must not be BOT_TOKEN_HERE
//   - owner must be a positive integer
//
// Every other value is used as written.
//
// # Rewriting
//
// When the operator supplied a value, the config section of the bundled
// reference template is written to the config file with the placeholders
// replaced. The file is overwritten. If the template cannot be read a
// minimal file holding only the token and owner is written instead.
package config
