// Package headlines provides a small headline aggregator. It scrapes a
// news page for headline links, stores them as articles, and lets users
// attach a freeform note to each saved article.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package headlines
