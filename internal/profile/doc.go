// Package profile persists named configuration profiles on disk and tracks
// which profile is active. All mutations are atomic renames so that
// concurrent CLI invocations never observe a torn write; last rename wins.
package profile
