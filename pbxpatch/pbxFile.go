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
	"path/filepath"
	"strings"
)

const (
	DEFAULT_SOURCETREE = "\"<group>\""
	DEFAULT_GROUP      = "Resources"
	DEFAULT_FILETYPE   = "unknown"
)

var FILETYPE_BY_EXTENSION = map[string]string{
	"a":           "archive.ar",
	"app":         "wrapper.application",
	"appex":       "wrapper.app-extension",
	"bundle":      "wrapper.plug-in",
	"dylib":       "compiled.mach-o.dylib",
	"framework":   "wrapper.framework",
	"h":           "sourcecode.c.h",
	"m":           "sourcecode.c.objc",
	"markdown":    "text",
	"pch":         "sourcecode.c.h",
	"plist":       "text.plist.xml",
	"sh":          "text.script.sh",
	"swift":       "sourcecode.swift",
	"xcassets":    "folder.assetcatalog",
	"xcconfig":    "text.xcconfig",
	"xcdatamodel": "wrapper.xcdatamodel",
	"xib":         "file.xib",
	"strings":     "text.plist.strings",
}

var GROUP_BY_FILETYPE = map[string]string{
	"sourcecode.c.h":    "Resources",
	"sourcecode.c.objc": "Sources",
	"sourcecode.swift":  "Sources",
}

// PbxFile describes one file to register in the project: its basename,
// its path relative to the project root, and the Xcode metadata derived
// from the extension.
type PbxFile struct {
	Basename          string
	Path              string
	LastKnownFileType string
	SourceTree        string
	Group             string
}

func NewPbxFile(filePath string) *PbxFile {
	pbxfile := PbxFile{
		Basename:   filepath.Base(filePath),
		Path:       filepath.ToSlash(filePath),
		SourceTree: DEFAULT_SOURCETREE,
	}
	pbxfile.LastKnownFileType = pbxfile.detectType(filePath)
	pbxfile.Group = pbxfile.detectGroup()
	return &pbxfile
}

func (pbxfile *PbxFile) detectType(filePath string) string {
	extension := strings.TrimPrefix(filepath.Ext(filePath), ".")
	filetype, found := FILETYPE_BY_EXTENSION[extension]
	if !found {
		return DEFAULT_FILETYPE
	}
	return filetype
}

func (pbxfile *PbxFile) detectGroup() string {
	groupName, ok := GROUP_BY_FILETYPE[pbxfile.LastKnownFileType]
	if !ok {
		return DEFAULT_GROUP
	}
	return groupName
}
