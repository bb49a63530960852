//go:build !ordskiplistdebug

package ordskiplist

const debugChecks = false
