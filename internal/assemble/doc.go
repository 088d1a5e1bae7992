// Package assemble joins MovieBox catalog payloads with reconciled
// public identifiers, artwork and community metadata into the detail
// and links documents the CLI prints.
package assemble
