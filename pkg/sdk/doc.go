// Package docmatch embeds the job description / resume comparator in a Go program.
//
// The client runs the same pipeline as the docmatch API: normalize both
// texts, build a TF-IDF pair over their joint vocabulary and score it with
// cosine similarity, plus per-document term frequencies.
//
//	client, _ := docmatch.New(ctx)
//	res, _ := client.Compare(ctx, jobDescription, resume)
//	fmt.Println(res.Display) // "0.432"
//
// Uploaded files (plain text, HTML, DOCX, PDF) go through CompareFiles:
//
//	res, _ := client.CompareFiles(ctx,
//	    docmatch.File{Name: "jd.docx", Data: jd},
//	    docmatch.File{Name: "cv.pdf", Data: cv},
//	)
//
// Results can be cached in Valkey or Redis with WithValkeyCache / WithRedisCache.
package docmatch
