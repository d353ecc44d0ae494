// Package deps verifies the external binaries Proteus shells out to.
package deps
