// Package cli provides the lifelog command-line client.
//
// The command tree is built with cobra. Before any command runs, the root
// command opens the local SQLite database, builds the API services and
// restores the stored session. Sections (journals, memories, tastes, places,
// phases, photos) share the same verbs:
//
//	lifelog journals list --mood happy -q coffee
//	lifelog journals add --mood CALM --tags "work, focus"
//	lifelog places edit <id> --status FAVORITE
//	lifelog photos add ./beach.jpg --story "first swim"
//	lifelog tastes delete <id> --yes
//
// `lifelog shell` runs the same commands from an interactive prompt.
package cli
