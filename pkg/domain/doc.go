// Package domain contains the core entities passed between the pipeline
// stages: briefs, generated artifacts, attachments and repository handles.
// These types represent business concepts only and are free of transport or
// provider concerns so they can be shared across packages.
package domain
