// Package models defines the entity contracts shared by the local workshop
// store and the cloud persistence adapter.
//
// Every entity carries a client-generated [ID] and, where the curriculum
// needs it, a creation timestamp. Cross-entity references (FrictionID,
// PilotID, and similar fields) are advisory: they hold another entity's id
// with no referential-integrity enforcement, and consumers must tolerate ids
// that no longer resolve.
//
// JSON field names are the canonical camelCase names used by the persisted
// local snapshot; they must not change without a snapshot migration.
package models
