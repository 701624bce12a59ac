package grammar

// CGrammar constructs the static K&R-C-like grammar this engine parses:
// around 200 productions over the terminal alphabet of C punctuators,
// reserved words, and the four lexeme-carrying token classes (identifier,
// integer/character/string constant), start symbol translation-unit.
//
// A couple of textbook grammar slips are fixed rather than reproduced:
//
//   - struct-declaration-list only repeats struct-declaration; the
//     comma-separated declarator forms live in a dedicated
//     struct-declarator-list.
//   - enum-specifier's braced form closes with "}", not "]".
//   - end-of-input is the first-class terminal "$" (grammar/symbol.go),
//     never conflated with an empty lookahead set.
//
// for-statement keeps all eight clause-subset productions, separated by
// ";" as in K&R.
//
// The grammar has no "sizeof", no unary "!"/"~", no "." member access, and
// no distinguished typedef-name token, because none of those appear in its
// terminal alphabet; type-specifier keywords and identifiers are lexically
// disjoint, so the grammar never needs the lexer-feedback trick real C
// grammars use to disambiguate typedef names.
func CGrammar() (*Grammar, error) {
	return NewGrammar(cStartSymbol, cTerminals, cRules)
}

const cStartSymbol = "translation-unit"

var cTerminals = []string{
	// Punctuators.
	"+", "++", "+=", "-", "--", "-=", "->", "*", "*=", "/", "/=", "%", "%=",
	"&", "&&", "|", "||", "^", "?", ":", ";", ",", "(", ")", "[", "]", "{",
	"}", "=", "==", "!=", "<", ">", "<=", ">=", "<<", ">>", "...",
	// Reserved words.
	"void", "char", "short", "int", "long", "float", "double", "signed",
	"unsigned", "auto", "register", "static", "extern", "typedef", "goto",
	"continue", "break", "return", "for", "do", "while", "if", "else",
	"switch", "case", "default", "enum", "struct", "union", "const",
	"volatile",
	// Lexeme-carrying classes.
	"id", "int_const", "char_const", "string_const",
}

func r(lhs string, rhs ...string) Rule {
	return Rule{LHS: lhs, RHS: rhs}
}

var cRules = []Rule{
	// --- Expressions, lowest to highest precedence ---

	r("expression", "assignment-expression"),
	r("expression", "expression", ",", "assignment-expression"),

	r("assignment-expression", "conditional-expression"),
	r("assignment-expression", "unary-expression", "assignment-operator", "assignment-expression"),

	r("assignment-operator", "="),
	r("assignment-operator", "+="),
	r("assignment-operator", "-="),
	r("assignment-operator", "*="),
	r("assignment-operator", "/="),
	r("assignment-operator", "%="),

	r("conditional-expression", "logical-or-expression"),
	r("conditional-expression", "logical-or-expression", "?", "expression", ":", "conditional-expression"),

	r("logical-or-expression", "logical-and-expression"),
	r("logical-or-expression", "logical-or-expression", "||", "logical-and-expression"),

	r("logical-and-expression", "inclusive-or-expression"),
	r("logical-and-expression", "logical-and-expression", "&&", "inclusive-or-expression"),

	r("inclusive-or-expression", "exclusive-or-expression"),
	r("inclusive-or-expression", "inclusive-or-expression", "|", "exclusive-or-expression"),

	r("exclusive-or-expression", "and-expression"),
	r("exclusive-or-expression", "exclusive-or-expression", "^", "and-expression"),

	r("and-expression", "equality-expression"),
	r("and-expression", "and-expression", "&", "equality-expression"),

	r("equality-expression", "relational-expression"),
	r("equality-expression", "equality-expression", "==", "relational-expression"),
	r("equality-expression", "equality-expression", "!=", "relational-expression"),

	r("relational-expression", "shift-expression"),
	r("relational-expression", "relational-expression", "<", "shift-expression"),
	r("relational-expression", "relational-expression", ">", "shift-expression"),
	r("relational-expression", "relational-expression", "<=", "shift-expression"),
	r("relational-expression", "relational-expression", ">=", "shift-expression"),

	r("shift-expression", "additive-expression"),
	r("shift-expression", "shift-expression", "<<", "additive-expression"),
	r("shift-expression", "shift-expression", ">>", "additive-expression"),

	r("additive-expression", "multiplicative-expression"),
	r("additive-expression", "additive-expression", "+", "multiplicative-expression"),
	r("additive-expression", "additive-expression", "-", "multiplicative-expression"),

	r("multiplicative-expression", "cast-expression"),
	r("multiplicative-expression", "multiplicative-expression", "*", "cast-expression"),
	r("multiplicative-expression", "multiplicative-expression", "/", "cast-expression"),
	r("multiplicative-expression", "multiplicative-expression", "%", "cast-expression"),

	r("cast-expression", "unary-expression"),
	r("cast-expression", "(", "type-name", ")", "cast-expression"),

	r("unary-expression", "postfix-expression"),
	r("unary-expression", "++", "unary-expression"),
	r("unary-expression", "--", "unary-expression"),
	r("unary-expression", "unary-operator", "cast-expression"),

	r("unary-operator", "&"),
	r("unary-operator", "*"),
	r("unary-operator", "+"),
	r("unary-operator", "-"),

	r("postfix-expression", "primary-expression"),
	r("postfix-expression", "postfix-expression", "[", "expression", "]"),
	r("postfix-expression", "postfix-expression", "(", ")"),
	r("postfix-expression", "postfix-expression", "(", "argument-expression-list", ")"),
	r("postfix-expression", "postfix-expression", "->", "id"),
	r("postfix-expression", "postfix-expression", "++"),
	r("postfix-expression", "postfix-expression", "--"),

	r("argument-expression-list", "assignment-expression"),
	r("argument-expression-list", "argument-expression-list", ",", "assignment-expression"),

	r("primary-expression", "id"),
	r("primary-expression", "int_const"),
	r("primary-expression", "char_const"),
	r("primary-expression", "string_const"),
	r("primary-expression", "(", "expression", ")"),

	r("constant-expression", "conditional-expression"),

	// --- Declarations ---

	r("declaration", "declaration-specifiers", ";"),
	r("declaration", "declaration-specifiers", "init-declarator-list", ";"),

	r("declaration-specifiers", "storage-class-specifier"),
	r("declaration-specifiers", "storage-class-specifier", "declaration-specifiers"),
	r("declaration-specifiers", "type-specifier"),
	r("declaration-specifiers", "type-specifier", "declaration-specifiers"),
	r("declaration-specifiers", "type-qualifier"),
	r("declaration-specifiers", "type-qualifier", "declaration-specifiers"),

	r("storage-class-specifier", "auto"),
	r("storage-class-specifier", "register"),
	r("storage-class-specifier", "static"),
	r("storage-class-specifier", "extern"),
	r("storage-class-specifier", "typedef"),

	r("type-specifier", "void"),
	r("type-specifier", "char"),
	r("type-specifier", "short"),
	r("type-specifier", "int"),
	r("type-specifier", "long"),
	r("type-specifier", "float"),
	r("type-specifier", "double"),
	r("type-specifier", "signed"),
	r("type-specifier", "unsigned"),
	r("type-specifier", "struct-or-union-specifier"),
	r("type-specifier", "enum-specifier"),

	r("type-qualifier", "const"),
	r("type-qualifier", "volatile"),

	r("struct-or-union-specifier", "struct-or-union", "id", "{", "struct-declaration-list", "}"),
	r("struct-or-union-specifier", "struct-or-union", "{", "struct-declaration-list", "}"),
	r("struct-or-union-specifier", "struct-or-union", "id"),

	r("struct-or-union", "struct"),
	r("struct-or-union", "union"),

	r("struct-declaration-list", "struct-declaration"),
	r("struct-declaration-list", "struct-declaration-list", "struct-declaration"),

	r("struct-declaration", "specifier-qualifier-list", "struct-declarator-list", ";"),

	r("specifier-qualifier-list", "type-specifier"),
	r("specifier-qualifier-list", "type-specifier", "specifier-qualifier-list"),
	r("specifier-qualifier-list", "type-qualifier"),
	r("specifier-qualifier-list", "type-qualifier", "specifier-qualifier-list"),

	r("struct-declarator-list", "struct-declarator"),
	r("struct-declarator-list", "struct-declarator-list", ",", "struct-declarator"),

	r("struct-declarator", "declarator"),
	r("struct-declarator", "declarator", ":", "constant-expression"),

	r("enum-specifier", "enum", "id", "{", "enumerator-list", "}"),
	r("enum-specifier", "enum", "{", "enumerator-list", "}"),
	r("enum-specifier", "enum", "id"),

	r("enumerator-list", "enumerator"),
	r("enumerator-list", "enumerator-list", ",", "enumerator"),

	r("enumerator", "id"),
	r("enumerator", "id", "=", "constant-expression"),

	r("declarator", "pointer", "direct-declarator"),
	r("declarator", "direct-declarator"),

	r("pointer", "*"),
	r("pointer", "*", "type-qualifier-list"),
	r("pointer", "*", "pointer"),
	r("pointer", "*", "type-qualifier-list", "pointer"),

	r("type-qualifier-list", "type-qualifier"),
	r("type-qualifier-list", "type-qualifier-list", "type-qualifier"),

	r("direct-declarator", "id"),
	r("direct-declarator", "(", "declarator", ")"),
	r("direct-declarator", "direct-declarator", "[", "constant-expression", "]"),
	r("direct-declarator", "direct-declarator", "[", "]"),
	r("direct-declarator", "direct-declarator", "(", "parameter-type-list", ")"),
	r("direct-declarator", "direct-declarator", "(", "identifier-list", ")"),
	r("direct-declarator", "direct-declarator", "(", ")"),

	r("parameter-type-list", "parameter-list"),
	r("parameter-type-list", "parameter-list", ",", "..."),

	r("parameter-list", "parameter-declaration"),
	r("parameter-list", "parameter-list", ",", "parameter-declaration"),

	r("parameter-declaration", "declaration-specifiers", "declarator"),
	r("parameter-declaration", "declaration-specifiers", "abstract-declarator"),
	r("parameter-declaration", "declaration-specifiers"),

	r("identifier-list", "id"),
	r("identifier-list", "identifier-list", ",", "id"),

	r("type-name", "specifier-qualifier-list"),
	r("type-name", "specifier-qualifier-list", "abstract-declarator"),

	r("abstract-declarator", "pointer"),
	r("abstract-declarator", "direct-abstract-declarator"),
	r("abstract-declarator", "pointer", "direct-abstract-declarator"),

	r("direct-abstract-declarator", "(", "abstract-declarator", ")"),
	r("direct-abstract-declarator", "[", "]"),
	r("direct-abstract-declarator", "[", "constant-expression", "]"),
	r("direct-abstract-declarator", "direct-abstract-declarator", "[", "]"),
	r("direct-abstract-declarator", "direct-abstract-declarator", "[", "constant-expression", "]"),
	r("direct-abstract-declarator", "(", ")"),
	r("direct-abstract-declarator", "(", "parameter-type-list", ")"),
	r("direct-abstract-declarator", "direct-abstract-declarator", "(", ")"),
	r("direct-abstract-declarator", "direct-abstract-declarator", "(", "parameter-type-list", ")"),

	r("init-declarator-list", "init-declarator"),
	r("init-declarator-list", "init-declarator-list", ",", "init-declarator"),

	r("init-declarator", "declarator"),
	r("init-declarator", "declarator", "=", "initializer"),

	r("initializer", "assignment-expression"),
	r("initializer", "{", "initializer-list", "}"),
	r("initializer", "{", "initializer-list", ",", "}"),

	r("initializer-list", "initializer"),
	r("initializer-list", "initializer-list", ",", "initializer"),

	// --- Statements ---

	r("statement", "labeled-statement"),
	r("statement", "expression-statement"),
	r("statement", "compound-statement"),
	r("statement", "selection-statement"),
	r("statement", "iteration-statement"),
	r("statement", "jump-statement"),

	r("labeled-statement", "id", ":", "statement"),
	r("labeled-statement", "case", "constant-expression", ":", "statement"),
	r("labeled-statement", "default", ":", "statement"),

	r("expression-statement", ";"),
	r("expression-statement", "expression", ";"),

	r("compound-statement", "{", "}"),
	r("compound-statement", "{", "statement-list", "}"),
	r("compound-statement", "{", "declaration-list", "}"),
	r("compound-statement", "{", "declaration-list", "statement-list", "}"),

	r("declaration-list", "declaration"),
	r("declaration-list", "declaration-list", "declaration"),

	r("statement-list", "statement"),
	r("statement-list", "statement-list", "statement"),

	r("selection-statement", "if", "(", "expression", ")", "statement"),
	r("selection-statement", "if", "(", "expression", ")", "statement", "else", "statement"),
	r("selection-statement", "switch", "(", "expression", ")", "statement"),

	r("iteration-statement", "while", "(", "expression", ")", "statement"),
	r("iteration-statement", "do", "statement", "while", "(", "expression", ")", ";"),
	r("iteration-statement", "for", "(", ";", ";", ")", "statement"),
	r("iteration-statement", "for", "(", ";", ";", "expression", ")", "statement"),
	r("iteration-statement", "for", "(", ";", "expression", ";", ")", "statement"),
	r("iteration-statement", "for", "(", ";", "expression", ";", "expression", ")", "statement"),
	r("iteration-statement", "for", "(", "expression", ";", ";", ")", "statement"),
	r("iteration-statement", "for", "(", "expression", ";", ";", "expression", ")", "statement"),
	r("iteration-statement", "for", "(", "expression", ";", "expression", ";", ")", "statement"),
	r("iteration-statement", "for", "(", "expression", ";", "expression", ";", "expression", ")", "statement"),

	r("jump-statement", "goto", "id", ";"),
	r("jump-statement", "continue", ";"),
	r("jump-statement", "break", ";"),
	r("jump-statement", "return", ";"),
	r("jump-statement", "return", "expression", ";"),

	// --- Top level ---

	r("translation-unit", "external-declaration"),
	r("translation-unit", "translation-unit", "external-declaration"),

	r("external-declaration", "function-definition"),
	r("external-declaration", "declaration"),

	r("function-definition", "declaration-specifiers", "declarator", "declaration-list", "compound-statement"),
	r("function-definition", "declaration-specifiers", "declarator", "compound-statement"),
	r("function-definition", "declarator", "declaration-list", "compound-statement"),
	r("function-definition", "declarator", "compound-statement"),
}
