// Package services defines the error taxonomy shared by the sync engine and
// its external collaborators. Sentinel markers classify failures into the
// handful of recovery policies the engine knows about: abort the run, skip
// the item, or degrade the notification.
package services
