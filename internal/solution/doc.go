// Package solution parses and serializes solution manifest files: the
// line-oriented, block-structured text format that groups projects into a
// single workspace description.
//
// # Core Concepts
//
// The model mirrors the textual shape of the format:
//
//   - SolutionDocument: the root container. Holds the verbatim header lines,
//     the ordered project entries, and the trailing Global block's sections.
//
//   - ProjectBlock: one `Project("{type}") = "name", "path", "{guid}"` entry
//     together with its nested sections.
//
//   - SectionBlock: a named `ProjectSection`/`GlobalSection` holding an
//     ordered list of `key = value` properties.
//
//   - LineReader / Scanner: the two scanning layers. LineReader is a
//     forward-only line stream with single-line lookahead; Scanner is a
//     cursor over one line used to pull quoted fields out of a header.
//
// Why a hand-rolled parser?
//
// The format predates any formal grammar and historic writers produced it
// inconsistently, most notably omitting the `EndProject` marker when the
// next entry follows immediately. A tolerant line-by-line reader with one
// line of lookahead handles those files faithfully, while a generated
// tokenizer would reject them. The lookahead is a first-class capability of
// LineReader so the close-marker leniency is visible in the API rather than
// implied by a shared cursor convention.
//
// Parsing is strictly forward over the input stream, single-threaded, and
// allocation-bounded by the document size. The returned document is fully
// independent of the input stream. Serialization normalizes indentation,
// GUID casing, and restores omitted `EndProject` markers; round trips are
// semantics-preserving, not byte-identical.
package solution
