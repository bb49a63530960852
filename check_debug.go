//go:build ordskiplistdebug

package ordskiplist

// Every mutation verifies the whole structure. Build with
// -tags ordskiplistdebug when chasing a bookkeeping bug.
const debugChecks = true
