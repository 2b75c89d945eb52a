// Package param implements the actuator parameter protocol layer.
//
// It provides three tightly coupled pieces:
//
//   - the parameter registry: per-variant descriptor tables built by
//     layering a common base with variant-specific overrides and
//     extensions (the same index can mean different things on
//     different variants — that is firmware behaviour, not a bug);
//   - the variant detector: maps a firmware version string to one of
//     the four known actuator families, refusing to guess;
//   - the codec: decodes raw, inconsistently-laid-out firmware
//     response bytes into typed values, tolerating both historical
//     numeric wire layouts and the firmware's string-echo quirks.
//
// Tables and envelopes are frozen at build time; Decode is total and
// never panics — anything it cannot interpret comes back as a raw-hex
// value.
package param
