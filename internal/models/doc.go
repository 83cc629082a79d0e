// Package models holds the LifeLog entities shared by the server and the
// CLI: journal entries, memories, tastes, places, photos and life phases,
// plus the enumerations and value types they are built from.
package models
