// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import "github.com/kgfoundry/kgmcp/pkg/kgclient"

// segmentSize is the number of relationships per path segment.
const segmentSize = 5

// PathSegment is a contiguous slice of a connection path. Adjacent
// segments share one node: each segment's last node is the next
// segment's first.
type PathSegment struct {
	Nodes         []kgclient.PathNode
	Relationships []string
}

// SegmentPath splits a long path into segments of exactly five
// relationships (the last may be shorter). Concatenating the segments and
// dropping the one-node overlap between neighbors reproduces the original
// node list. Callers use it for paths with more than five hops.
func SegmentPath(nodes []kgclient.PathNode, relationships []string) []PathSegment {
	if len(relationships) == 0 {
		if len(nodes) == 0 {
			return nil
		}
		return []PathSegment{{Nodes: nodes}}
	}

	var segments []PathSegment
	for start := 0; start < len(relationships); start += segmentSize {
		end := start + segmentSize
		if end > len(relationships) {
			end = len(relationships)
		}
		segments = append(segments, PathSegment{
			Nodes:         nodes[start : end+1],
			Relationships: relationships[start:end],
		})
	}
	return segments
}
