// Package analysis classifies the pages of an academic paper and extracts
// word, figure, image, GitHub link and DOI reference metrics from them.
//
// Everything here is a pure function of a model.Document and a Policy.
package analysis

import (
	"github.com/AOShei/paperstats/pkg/model"
)

// Analyze computes the result record for doc under p.
func Analyze(doc *model.Document, p Policy) model.Result {
	texts := doc.Texts()
	for i, t := range texts {
		texts[i] = fold(t)
	}
	layout := Classify(texts, p.TitlePage, p.BoundReferences)

	res := model.Result{
		File:          doc.Path,
		MetadataTitle: doc.Metadata.Title,
	}

	if layout.TitlePage {
		res.Title = Title(texts[0])
	}

	// Words
	words := Normalize(joinPages(texts, layout.pages(p.WordScope)), NormalizeOptions{
		StripLineNumbers: p.StripLineNumbers,
		StripCaptions:    p.StripCaptions,
	})
	res.WordCount = WordCount(words)

	// Figures and the images on captioned pages
	var labels []string
	for _, i := range layout.pages(p.FigureScope) {
		found := FigureLabels(texts[i])
		labels = append(labels, found...)
		if p.ImageScope == ImagesCaptioned && len(found) > 0 {
			res.EmbeddedImageCount += doc.Pages[i].ImageCount
		}
	}
	res.FigureNumbers = DistinctFigures(labels)
	if p.FigureCounting == CountDistinct {
		res.FigureCount = len(res.FigureNumbers)
	} else {
		res.FigureCount = len(labels)
	}
	if p.ImageScope == ImagesAll {
		for _, pg := range doc.Pages {
			res.EmbeddedImageCount += pg.ImageCount
		}
	}

	// GitHub links, document-wide
	res.GitHubLinks = GitHubLinks(joinPages(texts, allPages(len(texts))))

	// References
	dois := DOISet{}
	for _, uri := range LinkDOIs(doc.Pages, layout.pages(p.LinkDOIScope)) {
		dois.Add(uri)
	}
	for _, d := range TextDOIs(ReferenceText(texts, layout)) {
		dois.Add(d)
	}
	res.DOIs = dois.Sorted()
	res.ReferenceCount = len(res.DOIs)

	return res
}
