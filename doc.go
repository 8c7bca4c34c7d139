// Package pathlist adds directory listing, filtered traversal and tree
// rendering on top of a core.FS filesystem.
//
// Paths are plain values. A Path is an immutable sequence of segments that
// can be built, compared and rewritten without touching any filesystem:
//
//	p := pathlist.NewPath("/data/raw/2024/img.png")
//	p.Has("raw")                   // true
//	p.Change("raw", "clean")       // /data/clean/2024/img.png
//	p.WithSuffix(".jpg").Name()    // img.jpg
//
// Anything that reads or writes the disk goes through an Explorer, which
// binds a filesystem provider and the display parameters of the lists it
// returns:
//
//	ex := pathlist.New(billy.NewLocal(), pathlist.WithMaxLines(10))
//	files, err := ex.Rls(pathlist.NewPath("/data"), ".png", -1)
//	fmt.Println(files) // (#1204) [/data/raw/a.png, ...
//
// Listing skips entries whose name starts with a dot, matches the pattern as
// a plain substring of the full entry path, and treats a missing root as an
// empty result. Tree renders an indented outline:
//
//	|--[D] root
//	      |--[F] file1.txt
//	      |--[D] subdir
//	            |--[F] file2.txt
package pathlist
