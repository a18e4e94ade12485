/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

// Reserved keys of the Figma variables export format.
const (
	KeyType       = "$type"
	KeyValue      = "$value"
	KeyExtensions = "$extensions"

	// ExtCodeSyntax holds per-platform code syntax, e.g. {"WEB": "--ob-blue-500"}.
	ExtCodeSyntax = "com.figma.codeSyntax"

	// ExtAliasData holds the alias target of a semantic variable.
	ExtAliasData = "com.figma.aliasData"

	// ExtModeName tags a typography file with its language mode.
	ExtModeName = "com.figma.modeName"

	// PlatformWeb is the code syntax platform read and written by tokenbench.
	PlatformWeb = "WEB"

	// TargetVariableName is the alias data field naming the target variable.
	TargetVariableName = "targetVariableName"

	// TargetVariableSetName is the alias data field naming the target collection.
	TargetVariableSetName = "targetVariableSetName"
)
