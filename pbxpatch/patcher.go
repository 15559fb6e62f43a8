/**
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
'License'); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at
http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
'AS IS' BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package pbxpatch

import (
	"fmt"
	"regexp"
)

// The manifest is never parsed into a tree. Each section is located by
// its anchor pattern in the raw text and the new record is spliced in
// immediately after the anchor. A section whose anchor is absent is
// skipped; the remaining sections are still patched.
var (
	pbxBuildFileSectionRegex     = regexp.MustCompile(`/\* Begin PBXBuildFile section \*/\n`)
	pbxFileReferenceSectionRegex = regexp.MustCompile(`/\* Begin PBXFileReference section \*/\n`)
	pbxSourcesBuildPhaseRegex    = regexp.MustCompile(`isa = PBXSourcesBuildPhase;[^}]*files = \(\n`)
)

func pbxGroupChildrenRegex(groupName string) *regexp.Regexp {
	return regexp.MustCompile(`/\* ` + regexp.QuoteMeta(groupName) + ` \*/ = \{[^}]*children = \(\n`)
}

type Patcher struct {
	groupLabel string
}

// NewPatcher returns a Patcher inserting group children under the group
// whose comment label matches groupLabel. An empty label falls back to
// the group detected from the file type.
func NewPatcher(groupLabel string) Patcher {
	return Patcher{groupLabel: groupLabel}
}

// Patch registers pbxfile in the manifest text: a PBXBuildFile record, a
// PBXFileReference record, a child entry under the parent group and a
// file entry under the sources build phase. fileRef and buildFile are the
// identifiers naming the two new records. Every insertion leaves the
// surrounding text untouched; offsets for each step are computed against
// the text as already patched by the previous steps.
func (p Patcher) Patch(manifest string, pbxfile *PbxFile, fileRef, buildFile string) string {
	manifest = p.addToPbxBuildFileSection(manifest, pbxfile, fileRef, buildFile)
	manifest = p.addToPbxFileReferenceSection(manifest, pbxfile, fileRef)
	manifest = p.addToPbxGroup(manifest, pbxfile, fileRef)
	manifest = p.addToPbxSourcesBuildPhase(manifest, pbxfile, buildFile)
	return manifest
}

func insertAfter(manifest string, anchor *regexp.Regexp, entry string) string {
	loc := anchor.FindStringIndex(manifest)
	if loc == nil {
		return manifest
	}
	return manifest[:loc[1]] + entry + manifest[loc[1]:]
}

func (p Patcher) addToPbxBuildFileSection(manifest string, pbxfile *PbxFile, fileRef, buildFile string) string {
	entry := fmt.Sprintf("\t\t%s /* %s in Sources */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };\n",
		buildFile, pbxfile.Basename, fileRef, pbxfile.Basename)
	return insertAfter(manifest, pbxBuildFileSectionRegex, entry)
}

func (p Patcher) addToPbxFileReferenceSection(manifest string, pbxfile *PbxFile, fileRef string) string {
	entry := fmt.Sprintf("\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = %s; path = %s; sourceTree = %s; };\n",
		fileRef, pbxfile.Basename, pbxfile.LastKnownFileType, pbxfile.Basename, pbxfile.SourceTree)
	return insertAfter(manifest, pbxFileReferenceSectionRegex, entry)
}

func (p Patcher) addToPbxGroup(manifest string, pbxfile *PbxFile, fileRef string) string {
	groupLabel := p.groupLabel
	if groupLabel == "" {
		groupLabel = pbxfile.Group
	}
	entry := fmt.Sprintf("\t\t\t\t%s /* %s */,\n", fileRef, pbxfile.Basename)
	return insertAfter(manifest, pbxGroupChildrenRegex(groupLabel), entry)
}

func (p Patcher) addToPbxSourcesBuildPhase(manifest string, pbxfile *PbxFile, buildFile string) string {
	entry := fmt.Sprintf("\t\t\t\t%s /* %s in Sources */,\n", buildFile, pbxfile.Basename)
	return insertAfter(manifest, pbxSourcesBuildPhaseRegex, entry)
}
