// Package sink delivers rendered or escaped output to destinations beyond a
// plain io.Writer.
//
// Every destination takes an io.WriterTo, which markup.Markup implements, so
// a page is rendered straight into the destination:
//
//	err := sink.WriteFile("out/index.html", page)
//	err = sink.WriteMessage(conn, page)
//	err = sink.UploadS3(ctx, client, "bucket", "index.html", page)
//
// Streams are adapted with Copy, which drains a reader in reads of a fixed
// size:
//
//	err := sink.WriteFile("out.txt", sink.Copy(escape.NewReader(in), 64))
package sink
