//go:build !cubedebug

package cube

const debugAssertions = false
