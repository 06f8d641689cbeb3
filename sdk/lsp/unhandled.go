// Copyright 2022, Pulumi Corporation.  All rights reserved.

package lsp

import (
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

// unhandled answers every request the server does not implement with an empty
// result. Notifications are dropped.
type unhandled struct {
	logger *zap.SugaredLogger
}

func (u unhandled) skip(name string) {
	if u.logger != nil {
		u.logger.Debugf("'%s' was called but no handler is provided", name)
	}
}

func (u unhandled) CodeAction(_ context.Context, _ *protocol.CodeActionParams) (result []protocol.CodeAction, err error) {
	u.skip("codeAction")
	return
}

func (u unhandled) CodeLens(_ context.Context, _ *protocol.CodeLensParams) (result []protocol.CodeLens, err error) {
	u.skip("codeLens")
	return
}

func (u unhandled) CodeLensRefresh(_ context.Context) (err error) {
	u.skip("codeLensRefresh")
	return
}

func (u unhandled) CodeLensResolve(_ context.Context, _ *protocol.CodeLens) (result *protocol.CodeLens, err error) {
	u.skip("codeLensResolve")
	return
}

func (u unhandled) ColorPresentation(_ context.Context, _ *protocol.ColorPresentationParams) (result []protocol.ColorPresentation, err error) {
	u.skip("colorPresentation")
	return
}

func (u unhandled) CompletionResolve(_ context.Context, _ *protocol.CompletionItem) (result *protocol.CompletionItem, err error) {
	u.skip("completionResolve")
	return
}

func (u unhandled) Declaration(_ context.Context, _ *protocol.DeclarationParams) (result []protocol.Location, err error) {
	u.skip("declaration")
	return
}

func (u unhandled) Definition(_ context.Context, _ *protocol.DefinitionParams) (result []protocol.Location, err error) {
	u.skip("definition")
	return
}

func (u unhandled) DidChangeConfiguration(_ context.Context, _ *protocol.DidChangeConfigurationParams) (err error) {
	u.skip("didChangeConfiguration")
	return
}

func (u unhandled) DidChangeWatchedFiles(_ context.Context, _ *protocol.DidChangeWatchedFilesParams) (err error) {
	u.skip("didChangeWatchedFiles")
	return
}

func (u unhandled) DidChangeWorkspaceFolders(_ context.Context, _ *protocol.DidChangeWorkspaceFoldersParams) (err error) {
	u.skip("didChangeWorkspaceFolders")
	return
}

func (u unhandled) DidCreateFiles(_ context.Context, _ *protocol.CreateFilesParams) (err error) {
	u.skip("didCreateFiles")
	return
}

func (u unhandled) DidDeleteFiles(_ context.Context, _ *protocol.DeleteFilesParams) (err error) {
	u.skip("didDeleteFiles")
	return
}

func (u unhandled) DidRenameFiles(_ context.Context, _ *protocol.RenameFilesParams) (err error) {
	u.skip("didRenameFiles")
	return
}

func (u unhandled) DidSave(_ context.Context, _ *protocol.DidSaveTextDocumentParams) (err error) {
	u.skip("didSave")
	return
}

func (u unhandled) DocumentColor(_ context.Context, _ *protocol.DocumentColorParams) (result []protocol.ColorInformation, err error) {
	u.skip("documentColor")
	return
}

func (u unhandled) DocumentHighlight(_ context.Context, _ *protocol.DocumentHighlightParams) (result []protocol.DocumentHighlight, err error) {
	u.skip("documentHighlight")
	return
}

func (u unhandled) DocumentLink(_ context.Context, _ *protocol.DocumentLinkParams) (result []protocol.DocumentLink, err error) {
	u.skip("documentLink")
	return
}

func (u unhandled) DocumentLinkResolve(_ context.Context, _ *protocol.DocumentLink) (result *protocol.DocumentLink, err error) {
	u.skip("documentLinkResolve")
	return
}

func (u unhandled) DocumentSymbol(_ context.Context, _ *protocol.DocumentSymbolParams) (result []interface{}, err error) {
	u.skip("documentSymbol")
	return
}

func (u unhandled) ExecuteCommand(_ context.Context, _ *protocol.ExecuteCommandParams) (result interface{}, err error) {
	u.skip("executeCommand")
	return
}

func (u unhandled) FoldingRanges(_ context.Context, _ *protocol.FoldingRangeParams) (result []protocol.FoldingRange, err error) {
	u.skip("foldingRanges")
	return
}

func (u unhandled) Formatting(_ context.Context, _ *protocol.DocumentFormattingParams) (result []protocol.TextEdit, err error) {
	u.skip("formatting")
	return
}

func (u unhandled) Hover(_ context.Context, _ *protocol.HoverParams) (result *protocol.Hover, err error) {
	u.skip("hover")
	return
}

func (u unhandled) Implementation(_ context.Context, _ *protocol.ImplementationParams) (result []protocol.Location, err error) {
	u.skip("implementation")
	return
}

func (u unhandled) IncomingCalls(_ context.Context, _ *protocol.CallHierarchyIncomingCallsParams) (result []protocol.CallHierarchyIncomingCall, err error) {
	u.skip("incomingCalls")
	return
}

func (u unhandled) LinkedEditingRange(_ context.Context, _ *protocol.LinkedEditingRangeParams) (result *protocol.LinkedEditingRanges, err error) {
	u.skip("linkedEditingRange")
	return
}

func (u unhandled) LogTrace(_ context.Context, _ *protocol.LogTraceParams) (err error) {
	u.skip("logTrace")
	return
}

func (u unhandled) Moniker(_ context.Context, _ *protocol.MonikerParams) (result []protocol.Moniker, err error) {
	u.skip("moniker")
	return
}

func (u unhandled) OnTypeFormatting(_ context.Context, _ *protocol.DocumentOnTypeFormattingParams) (result []protocol.TextEdit, err error) {
	u.skip("onTypeFormatting")
	return
}

func (u unhandled) OutgoingCalls(_ context.Context, _ *protocol.CallHierarchyOutgoingCallsParams) (result []protocol.CallHierarchyOutgoingCall, err error) {
	u.skip("outgoingCalls")
	return
}

func (u unhandled) PrepareCallHierarchy(_ context.Context, _ *protocol.CallHierarchyPrepareParams) (result []protocol.CallHierarchyItem, err error) {
	u.skip("prepareCallHierarchy")
	return
}

func (u unhandled) PrepareRename(_ context.Context, _ *protocol.PrepareRenameParams) (result *protocol.Range, err error) {
	u.skip("prepareRename")
	return
}

func (u unhandled) RangeFormatting(_ context.Context, _ *protocol.DocumentRangeFormattingParams) (result []protocol.TextEdit, err error) {
	u.skip("rangeFormatting")
	return
}

func (u unhandled) References(_ context.Context, _ *protocol.ReferenceParams) (result []protocol.Location, err error) {
	u.skip("references")
	return
}

func (u unhandled) Rename(_ context.Context, _ *protocol.RenameParams) (result *protocol.WorkspaceEdit, err error) {
	u.skip("rename")
	return
}

func (u unhandled) Request(_ context.Context, _ string, _ interface{}) (result interface{}, err error) {
	u.skip("request")
	return
}

func (u unhandled) SemanticTokensFull(_ context.Context, _ *protocol.SemanticTokensParams) (result *protocol.SemanticTokens, err error) {
	u.skip("semanticTokensFull")
	return
}

func (u unhandled) SemanticTokensFullDelta(_ context.Context, _ *protocol.SemanticTokensDeltaParams) (result interface{}, err error) {
	u.skip("semanticTokensFullDelta")
	return
}

func (u unhandled) SemanticTokensRange(_ context.Context, _ *protocol.SemanticTokensRangeParams) (result *protocol.SemanticTokens, err error) {
	u.skip("semanticTokensRange")
	return
}

func (u unhandled) SemanticTokensRefresh(_ context.Context) (err error) {
	u.skip("semanticTokensRefresh")
	return
}

func (u unhandled) SetTrace(_ context.Context, _ *protocol.SetTraceParams) (err error) {
	u.skip("setTrace")
	return
}

func (u unhandled) ShowDocument(_ context.Context, _ *protocol.ShowDocumentParams) (result *protocol.ShowDocumentResult, err error) {
	u.skip("showDocument")
	return
}

func (u unhandled) SignatureHelp(_ context.Context, _ *protocol.SignatureHelpParams) (result *protocol.SignatureHelp, err error) {
	u.skip("signatureHelp")
	return
}

func (u unhandled) Symbols(_ context.Context, _ *protocol.WorkspaceSymbolParams) (result []protocol.SymbolInformation, err error) {
	u.skip("symbols")
	return
}

func (u unhandled) TypeDefinition(_ context.Context, _ *protocol.TypeDefinitionParams) (result []protocol.Location, err error) {
	u.skip("typeDefinition")
	return
}

func (u unhandled) WillCreateFiles(_ context.Context, _ *protocol.CreateFilesParams) (result *protocol.WorkspaceEdit, err error) {
	u.skip("willCreateFiles")
	return
}

func (u unhandled) WillDeleteFiles(_ context.Context, _ *protocol.DeleteFilesParams) (result *protocol.WorkspaceEdit, err error) {
	u.skip("willDeleteFiles")
	return
}

func (u unhandled) WillRenameFiles(_ context.Context, _ *protocol.RenameFilesParams) (result *protocol.WorkspaceEdit, err error) {
	u.skip("willRenameFiles")
	return
}

func (u unhandled) WillSave(_ context.Context, _ *protocol.WillSaveTextDocumentParams) (err error) {
	u.skip("willSave")
	return
}

func (u unhandled) WillSaveWaitUntil(_ context.Context, _ *protocol.WillSaveTextDocumentParams) (result []protocol.TextEdit, err error) {
	u.skip("willSaveWaitUntil")
	return
}

func (u unhandled) WorkDoneProgressCancel(_ context.Context, _ *protocol.WorkDoneProgressCancelParams) (err error) {
	u.skip("workDoneProgressCancel")
	return
}
