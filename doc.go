// Package circuits connects 3-D junction boxes into circuits, closest pairs
// first, and answers questions about the resulting grouping.
//
// What is it?
//
//	Given n points in 3-space, every pair is a candidate connection. Pairs
//	are replayed in ascending distance order against a disjoint-set, so each
//	connection either joins two circuits or is skipped because its boxes
//	already share one. Two questions are answered:
//		• Bounded: after k connections, what is the product of the three
//		  largest circuit sizes?
//		• Full: which connection first leaves a single circuit, and what is
//		  the product of its boxes' X coordinates?
//
// Under the hood, everything is organized under these packages:
//
//	spatial/          — Point, distance metrics, "x,y,z" parser and loader
//	dsu/              — array-backed disjoint-set, union by rank or size
//	circuit/          — edge generation, stable sort, Connect / ConnectAll
//	internal/config   — viper-backed settings (file, env, flags)
//	internal/logging  — zap loggers and the trace Observer
//	internal/report   — circuit size tables
//	cmd/circuits      — the command-line front end
//
// Quick example:
//
//	pts, _ := spatial.ParseString("0,0,0\n1,0,0\n5,0,0\n9,0,0\n")
//	res, _ := circuit.Connect(pts, 1)
//	fmt.Println(res.Product) // 2·1·1 = 2
//
// From the command line:
//
//	circuits bounded input.txt --connections 1000
//	circuits full input.txt --verbose
package circuits
