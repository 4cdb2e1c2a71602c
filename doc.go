// Package mdemoji adds custom image emoji to goldmark.
//
// # Quick Start
//
// Point Setup at a directory of images and a goldmark instance:
//
//	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
//	err := mdemoji.Setup(ctx, md, mdemoji.Options{
//	    EmojiDir:  "./public/img/emoji/",
//	    URLPrefix: "/img/emoji/",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	md.Convert([]byte("Hello :blobcat: :smile:"), os.Stdout)
//
// which renders
//
//	<p>Hello <span class="custom-emoji--span"><img src="/img/emoji/blobcat.png" alt="emoji: blobcat" class="custom-emoji--img" /></span> <span class="unicode-emoji--span">😄</span></p>
//
// # Pipeline
//
// Setup runs three stages:
//
//  1. Scan walks the emoji directory and maps each image to a URL. Images in
//     a subdirectory are named "<subdir>_<name>", after the collection
//     convention of obsidian-icon-shortcodes.
//  2. Compose merges the scanned definitions over a unicode set (full, light
//     or none), resolves text shortcuts and applies the allow-list.
//  3. The composition is registered with goldmark-emoji and the emoji node
//     renderer is replaced by a Renderer.
//
// Each stage is exported on its own for callers that need only part of it:
//
//	defs, err := mdemoji.Scan(ctx, "./public/img/emoji/", "/img/emoji/")
//	comp := mdemoji.ComposeDefinitions(defs, mdemoji.Options{UnicodeSet: mdemoji.UnicodeLight})
//	md := goldmark.New(goldmark.WithExtensions(
//	    mdemoji.New(comp, mdemoji.NewRenderer(mdemoji.RendererConfig{})),
//	))
//
// # Image Attributes
//
// Custom emoji images get alt="emoji: <name>" and class="custom-emoji--img".
// Override them per key with a static set or per emoji with a function:
//
//	opts.ImgAttributes = mdemoji.StaticAttrs{Value: mdemoji.Attrs{
//	    "loading": "lazy",
//	    "class":   false, // drop the attribute
//	}}
//
//	opts.ImgAttributes = mdemoji.ComputedAttrs(func(m mdemoji.EmojiMeta, _ mdemoji.Attrs) any {
//	    return mdemoji.Attrs{"title": m.RawShortcode, "data-pack": m.Subdir}
//	})
//
// Overrides that are not a mapping are logged and ignored.
package mdemoji
