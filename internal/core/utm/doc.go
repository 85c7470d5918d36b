// Package utm holds the pure composition rules of tracking links: campaign
// slugs, UTM terms, slug normalisation, tracking parameters and the final
// URL. Nothing in here performs I/O, so both the backend and the console
// share it.
package utm
