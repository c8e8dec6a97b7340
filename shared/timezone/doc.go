// Package timezone centralizes time handling so every timestamp the service
// produces is taken in the configured application timezone.
package timezone
