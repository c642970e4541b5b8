// Package mmap maps local files read-only into memory.
//
//	m, err := mmap.Open("features.csv")
//	if err != nil { ... }
//	defer m.Close()
//	data := m.Bytes()
//
// Unix uses mmap(2) with madvise(2) hints; Windows uses MapViewOfFile and
// ignores hints.
package mmap
