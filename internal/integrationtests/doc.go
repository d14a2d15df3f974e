// Package integrationtests runs manifests and documents end to end through
// the application, from loading to the instance report.
package integrationtests
