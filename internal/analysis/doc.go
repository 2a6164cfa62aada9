// Package analysis provides post-run statistics over discharge series:
// flow-duration curves and baseflow separation.
package analysis
