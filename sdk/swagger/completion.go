// Copyright 2022, Pulumi Corporation.  All rights reserved.

package swagger

import (
	"go.lsp.dev/protocol"

	"github.com/swaggerls/swagger-lsp/sdk/openapi"
	"github.com/swaggerls/swagger-lsp/sdk/util"
)

// completionItems turns fields into completion items, keeping their order.
func completionItems(fields []openapi.Field) []protocol.CompletionItem {
	return util.MapOver(fields, func(f openapi.Field) protocol.CompletionItem {
		return protocol.CompletionItem{
			InsertTextFormat: protocol.InsertTextFormatPlainText,
			InsertTextMode:   protocol.InsertTextModeAsIs,
			Kind:             protocol.CompletionItemKindField,
			Label:            f.Name,
			InsertText:       f.Name,
			Detail:           f.Detail,
		}
	})
}
