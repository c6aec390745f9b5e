// Package markdown holds the document level helpers used by recipe ingestion:
// the frontmatter micro-format, asset link rewriting and the goldmark backed
// HTML renderer used by the detail endpoint.
package markdown
