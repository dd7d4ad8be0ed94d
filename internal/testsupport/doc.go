// Package testsupport holds fixtures shared by package tests: generated
// images and config files in per-test temp directories.
package testsupport
