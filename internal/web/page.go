package web

import "html/template"

// formPage is the whole UI. One page, one form; the response is the
// consolidated file itself.
var formPage = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>solidify</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; }
label { display: block; margin-top: 0.75rem; }
input[type=text], input[type=number] { width: 12rem; }
button { margin-top: 1rem; }
</style>
</head>
<body>
<h1>solidify</h1>
<p>Consolidate two or more delimited files into one table. Records are
matched by the key columns; records missing on one side are padded with
the filler.</p>
<form action="/consolidate" method="post" enctype="multipart/form-data">
  <label>Input files (two or more)
    <input type="file" name="inputs" multiple required>
  </label>
  <label>Key columns (1-based, comma-separated; negative counts from the
  right, 0 keeps every row distinct)
    <input type="text" name="columns" value="1" required>
  </label>
  <label>Delimiter ("tab" or a single character)
    <input type="text" name="delimiter" value="tab">
  </label>
  <label>Filler for missing cells
    <input type="text" name="filler" value="">
  </label>
  <label><input type="checkbox" name="multi"> Allow multi-merge</label>
  <label><input type="checkbox" name="single"> Allow single-column inputs</label>
  <label><input type="checkbox" name="warn_unmatched"> Warn about unmatched records</label>
  <label>Warn about similar keys within edit distance (empty disables)
    <input type="number" name="warn_similar" step="0.5" min="0">
  </label>
  <button type="submit">Consolidate</button>
</form>
</body>
</html>
`))
