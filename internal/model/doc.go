// Package model contains the shared interfaces and data types used
// across the SDK: the logger and HTTP client contracts that every other
// package depends upon, the key-value store used to persist access
// tokens, and the data types exchanged with the skill platform APIs.
//
// This package MUST NOT depend on any other package in this module.
package model
