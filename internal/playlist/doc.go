// Package playlist turns remote IPTV playlist text into typed, classified
// entries. It covers the download (with a time-based local cache), the
// #EXTINF/URL pair scan, URL-based category routing, and the live TV country
// filter. Only the #EXTINF subset of the M3U format is understood.
package playlist
