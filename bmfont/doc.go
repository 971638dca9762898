// Package bmfont reads and writes the text variant of the AngelCode BMFont
// descriptor format.
//
// A descriptor has an info record, a common record and, per page, a page
// record followed by its characters and kerning pairs:
//
//	info face="Go" size=32 bold=0 italic=0 charset="" unicode=0 stretchH=100 smooth=1 aa=1 padding=8,8,8,8 spacing=-8,-8
//	common lineHeight=37 base=30 scaleW=512 scaleH=512 pages=1 packed=0
//	page id=0 file="Go_0_32.png"
//	chars count=1
//	char id=65    x=0  y=0  width=36  height=39  xoffset=-8  yoffset=-2  xadvance=21 page=0 chnl=0
//	kernings count=0
//
// Field order, key names and the spacing between char fields follow what
// text renderers consuming these files expect, so Encode output is stable
// byte for byte. Only the face name and page file names are quoted; no
// escaping is performed.
package bmfont
