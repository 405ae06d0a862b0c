// Package resumeparse provides a pluggable pipeline for extracting
// structured fields (name, email, technical skills) from resume documents
// in multiple file formats (PDF, Word, HTML).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., pdfcpu/, gemini/, sqlite/).
package resumeparse
